package assert

import "github.com/loags/stepheight/serror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(serror.New(message, args...))
	}
}
