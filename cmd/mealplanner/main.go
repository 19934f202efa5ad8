package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()
	e := &env{}
	err := newRootCmd(e).ExecuteContext(ctx)
	if cerr := e.close(ctx); cerr != nil {
		fmt.Fprintln(os.Stderr, cerr)
		err = errors.Join(err, cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
