// Package present provides fbtext.Presenter implementations: an in-memory
// double buffer for tests and tools, a presenter that writes every frame
// to a PNG file, and a Linux framebuffer device presenter.
//
// Presenters log their lifecycle through fbtext.Logger.
package present
