// Package tui is a full-screen bubbletea front end for the Car Simulator.
//
// The screen shows the status panel, the menu, the last few result messages
// and a text prompt. Enter submits the prompt to the game service exactly as
// the console front end would; esc or ctrl+c quits.
package tui
