package main

import (
	"github.com/spf13/pflag"

	"discburn/internal/burnpage"
)

// bindImageFlags registers the flags describing the image being burned.
func bindImageFlags(f *pflag.FlagSet, image *burnpage.Image) {
	f.BoolVar(&image.HasTOC, "toc", false, "Image carries a TOC file")
	f.BoolVar(&image.MultiSession, "multi-session", false, "Leave the disc open for further sessions")
	f.BoolVar(&image.DisableOnFly, "lock-on-the-fly", false, "Image cannot be written on the fly")
	f.BoolVar(&image.DisableVerify, "lock-verify", false, "Image cannot be verified after writing")
}
