package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nw-github/initrd"
	"github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "Verbose")
	flag.Parse()
	if len(flag.Args()) != 2 {
		fmt.Println("Please provide a source directory and an image file path")
		os.Exit(1)
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := pack(flag.Arg(0), flag.Arg(1)); err != nil {
		logrus.WithError(err).Fatal("build failed")
	}
}

// pack builds src into an image at dst. dst is only created once the image
// is fully assembled in memory.
func pack(src, dst string) error {
	logrus.Infof("packing %s into %s", src, dst)
	n := time.Now()
	img, err := initrd.Build(os.DirFS(src))
	if err != nil {
		return err
	}
	for i, ino := range img.Inodes {
		size, addr := img.Inodes.Resolve(i)
		logrus.WithFields(logrus.Fields{
			"inode": i,
			"dir":   ino.IsDir(),
			"size":  size,
			"addr":  addr,
		}).Debug(ino.Name)
	}
	f, err := os.Create(dst)
	if err != nil {
		return errors.Join(errors.New("failed to create image file"), err)
	}
	written, err := img.WriteTo(f)
	if err != nil {
		f.Close()
		return errors.Join(errors.New("failed to write image"), err)
	}
	if err = f.Close(); err != nil {
		return errors.Join(errors.New("failed to close image file"), err)
	}
	logrus.WithFields(logrus.Fields{
		"inodes": len(img.Inodes),
		"data":   len(img.Data),
		"bytes":  written,
	}).Infof("built %s in %s", dst, time.Since(n).Round(time.Microsecond))
	return nil
}
