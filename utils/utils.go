package utils

import (
	"fmt"
	"log"
)

func LogFunc(modName string, fstr string, i ...interface{}) {
	if i != nil {
		log.Printf("%s\t: %s", modName, fmt.Sprintf(fstr, i...))
	} else {
		log.Printf("%s\t: %s", modName, fstr)
	}
}

// PrefixLogf returns a printf-style logger which tags each line with prefix.
func PrefixLogf(prefix string) func(string, ...interface{}) {
	return func(s string, i ...interface{}) {
		log.Printf(prefix+": "+s, i...)
	}
}
