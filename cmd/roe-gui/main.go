// roe-gui is a desktop front end for roe-cli, which hides files inside .bmp
// images and recovers them again.
//
// The form collects the input paths, an output directory, a password and
// the action. A batch runs roe-cli once per input path, one at a time, and
// stops at the first failure.
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics driver)

package main

// version is the application version displayed in the window title.
const version = "v1.0.0"

func main() {
	run()
}
