// Package zaphandler provides a zapcore.Core backed by a msglog Logger, so
// components instrumented with zap write catalog lines.
//
//	z := zap.New(zaphandler.NewCore(l, zapcore.InfoLevel)).Named("Worker")
//	z.Info("greet", zap.String("who", "World")) // Hello, World!
//
// Field keys are not rendered; field values fill the {n} placeholders of
// the template in the order they were added.
package zaphandler
