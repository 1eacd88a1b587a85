/*
Package tracing is a thin shim over the schuko tracing framework.

It selects a single trace channel for the whole module and exposes it
through package-level functions, so client packages do not have to carry
a tracer variable around.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns the trace channel used by all uniprop packages.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// SetTestingLog directs tracing output to the log of a testing.T and
// tears the connection down when the test finishes.
func SetTestingLog(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	t.Cleanup(teardown)
	tracer().SetTraceLevel(tracing.LevelDebug)
}

// P attaches a key/value field to the next trace message.
func P(key string, value interface{}) tracing.Trace {
	return tracer().P(key, value)
}

// Debugf traces at debug level.
func Debugf(format string, args ...interface{}) {
	tracer().Debugf(format, args...)
}

// Infof traces at info level.
func Infof(format string, args ...interface{}) {
	tracer().Infof(format, args...)
}

// Errorf traces at error level.
func Errorf(format string, args ...interface{}) {
	tracer().Errorf(format, args...)
}
