package io

import (
	"errors"

	"github.com/dfintha/brainfuck/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)
