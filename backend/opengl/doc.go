// Package opengl displays ui widget trees in a GLFW window.
//
// A Device uploads the gpu.DrawList built by a gpu.Canvas and draws it with
// an OpenGL 4.1 core profile shader. Run owns the window, translates GLFW
// callbacks into ui events, and drives a ui.Runtime once per frame.
package opengl
