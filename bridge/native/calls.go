//go:build cgo

package native

/*
#cgo LDFLAGS: -lpthread
#include <pthread.h>
#include <stdlib.h>
#include "logbridge.h"

static void call_int(const char *format, int v) {
	logbridge_message_callback(format, v);
}

static void call_strings(const char *format, const char *a, const char *b) {
	logbridge_message_callback(format, a, b);
}

static void call_double(const char *format, double v) {
	logbridge_message_callback(format, v);
}

static void call_literal(const char *format) {
	logbridge_message_callback(format);
}

static void call_via_pointer(void *fn, const char *format, int v) {
	((logbridge_callback_fn)fn)(format, v);
}

typedef struct {
	int id;
	int count;
} worker_args;

static void *worker(void *p) {
	worker_args *a = (worker_args *)p;
	int i;
	for (i = 0; i < a->count; i++) {
		logbridge_message_callback("thread=%d seq=%d", a->id, i);
	}
	return NULL;
}

static int call_from_threads(int threads, int count) {
	pthread_t tids[64];
	worker_args args[64];
	int i;

	if (threads > 64) {
		threads = 64;
	}
	for (i = 0; i < threads; i++) {
		args[i].id = i;
		args[i].count = count;
		if (pthread_create(&tids[i], NULL, worker, &args[i]) != 0) {
			return -1;
		}
	}
	for (i = 0; i < threads; i++) {
		pthread_join(tids[i], NULL);
	}
	return 0;
}
*/
import "C"
import "unsafe"

// The helpers below drive the C callback the way a native library would.
// cgo cannot call variadic C functions directly, so each argument shape
// gets its own C wrapper.

func callInt(format string, v int) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.call_int(cf, C.int(v))
}

func callStrings(format, a, b string) {
	cf, ca, cb := C.CString(format), C.CString(a), C.CString(b)
	defer C.free(unsafe.Pointer(cf))
	defer C.free(unsafe.Pointer(ca))
	defer C.free(unsafe.Pointer(cb))
	C.call_strings(cf, ca, cb)
}

func callDouble(format string, v float64) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.call_double(cf, C.double(v))
}

func callLiteral(format string) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.call_literal(cf)
}

func callViaPointer(fn unsafe.Pointer, format string, v int) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.call_via_pointer(fn, cf, C.int(v))
}

func callFromThreads(threads, count int) bool {
	return C.call_from_threads(C.int(threads), C.int(count)) == 0
}
