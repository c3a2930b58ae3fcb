/*
Package logger provides logging functionality to a basecamp app by defining the required behavior in [Logger]
and providing an implementation of it with [CampLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [CampLogger] is initialized with [LogLevelWarn],
only [*CampLogger.Warn], [*CampLogger.Error], and [*CampLogger.Fatal] produce messages.

# CampLogger

Log messages emitted by [CampLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [WARN] basecamp/http/router/pages.go:43 'no route matched' log_context: {"data":{"path":"/nope"}}

The log context is a JSON-encoded [LogContext].
It carries data inessential to the message proper
but which gives a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
