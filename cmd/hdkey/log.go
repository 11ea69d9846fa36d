package main

import (
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/kaspanet/hdkeychain/util/panics"
)

var log = logger.RegisterSubSystem("HDCL")
var spawn = panics.GoroutineWrapperFunc(log)
