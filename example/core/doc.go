// Package core contains the pure domain logic of the example billing
// application: computing billing month schedules, trial end dates and grace
// windows on top of the calendrical value types.
//
// The package performs no I/O; persistence lives in example/shell.
package core
