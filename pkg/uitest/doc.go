// Package uitest provides a deterministic harness for exercising
// widgets headlessly: a software-rendered surface, scripted pointer
// and keyboard input, and controllable frame time for animation tests.
package uitest
