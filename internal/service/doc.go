// Package service holds the diary business operations: reading and saving
// days, statistics, search, export, history, timelines, preferences and
// authentication.
//
// Services receive their stores at construction. The HTTP handlers depend
// only on the interfaces declared in interfaces.go.
package service
