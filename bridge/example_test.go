package bridge_test

import (
	"fmt"

	"github.com/philipp01105/logbridge/bridge"
)

// Install a handler and forward a formatted message through it.
func Example() {
	prev := bridge.SetHandler(bridge.HandlerFunc(func(msg string) {
		fmt.Println("native:", msg)
	}))
	defer bridge.SetHandler(prev)

	bridge.Forward("value=%d", 42)
	bridge.Forward("%s-%s", "a", "b")
	// Output:
	// native: value=42
	// native: a-b
}

// Render shows what a handler would receive without dispatching.
func ExampleRender() {
	msg, truncated := bridge.Render("decoder %s ready", "h264")
	fmt.Println(msg, truncated)
	// Output: decoder h264 ready false
}
