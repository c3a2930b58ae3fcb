// Command basecamp runs the basecamp web server.
//
// Configure it with environment variables or a .env file; cf. package camp.
package main

import (
	"os"

	"github.com/xy-planning-network/basecamp/camp"
	"github.com/xy-planning-network/basecamp/logger"
)

func main() {
	c, err := camp.New(camp.WithGlobalRegistry())
	if err != nil {
		logger.New().Fatal("could not set up basecamp: "+err.Error(), &logger.LogContext{Error: err})
		os.Exit(1)
	}

	if err := c.Guide(); err != nil {
		c.Logger().Fatal(err.Error(), &logger.LogContext{Error: err})
		os.Exit(1)
	}
}
