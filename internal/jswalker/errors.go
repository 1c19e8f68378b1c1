package jswalker

import "errors"

var (
	errNoRootNode     = errors.New("empty parse tree")
	errUnsupportedAST = errors.New("ast was not produced by jswalker.Parse")
)
