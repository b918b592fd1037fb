package connection

import "fmt"

const (
	ConsoleReadFailed uint8 = iota
	ConsoleWriteFailed
)

type ConsoleErr struct {
	code uint8
	desc string
	err  error
}

func NewConsoleErr(code uint8, err error) ConsoleErr {
	return ConsoleErr{code: code, err: err}
}

func (c ConsoleErr) AddDesc(desc string) ConsoleErr {
	c.desc = desc
	return c
}

func (c ConsoleErr) Error() string {
	return fmt.Sprintf("console error - code: %d\tdesc: %s\terr: %v", c.code, c.desc, c.err)
}

func (c ConsoleErr) Unwrap() error {
	return c.err
}

func (c ConsoleErr) Code() uint8 {
	return c.code
}
