// Command faintctl is a small driver that exercises the faint graphics core
// against real files on disk: quantizing, converting between BMP/ICO/CUR,
// dumping bitmap statistics, and rendering a fixed demo scene.
package main

func main() {
	Execute()
}
