//go:build cgo

package native

/*
#include "logbridge.h"
*/
import "C"
import (
	"sync"
	"unsafe"

	"github.com/philipp01105/logbridge/bridge"
)

// MaxMessageSize is the capacity of the C render buffer, terminator
// included.
const MaxMessageSize = C.LOGBRIDGE_MAX_MESSAGE

var (
	callbackOnce sync.Once
	callbackPtr  unsafe.Pointer
)

// CallbackPointer returns the address of the C logging callback as an
// opaque pointer. The value is non-nil and identical on every call.
func CallbackPointer() unsafe.Pointer {
	callbackOnce.Do(func() {
		callbackPtr = C.logbridge_callback_pointer()
	})
	return callbackPtr
}

// logbridgeGoHandler receives the rendered buffer. The buffer lives on
// the C caller's stack, so it is copied before dispatch.
//
//export logbridgeGoHandler
func logbridgeGoHandler(message *C.char) {
	bridge.Dispatch(C.GoString(message))
}
