package main

import (
	"reflect"
	"strconv"

	"github.com/alecthomas/kong"
)

/* Accepts decimal and 0x prefixed values for offset arguments */
type intMapper struct{}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	if err := ctx.Scan.PopValueInto("int", &value); err != nil {
		return err
	}

	i, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}
