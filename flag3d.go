// Package flag3d renders an image as a waving 3D flag with Ebitengine.
//
// A GridMesh subdivides a rectangle the size of the image into a grid of cells, each made of two triangles, and a WaveAnimator
// moves each vertex's depth along a sine wave that travels diagonally across the grid as time passes. A Camera projects the mesh
// with a perspective projection and draws it with Image.DrawTriangles(), and a Host ties all of it to Ebitengine's game loop.
package flag3d
