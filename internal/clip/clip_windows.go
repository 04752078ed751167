//go:build windows

package clip

// #cgo LDFLAGS: -luser32
//
// #include <windows.h>
// #include <stdlib.h>
//
// static HWND furiclean_create_listener_window();
// static void furiclean_pump_messages(HWND hwnd, int* changed);
//
// static LRESULT CALLBACK furiclean_wnd_proc(HWND hwnd, UINT msg, WPARAM wp, LPARAM lp) {
//     if (msg == WM_CLIPBOARDUPDATE) {
//         PostMessage(hwnd, WM_USER + 1, 0, 0);
//         return 0;
//     }
//     return DefWindowProc(hwnd, msg, wp, lp);
// }
//
// static HWND furiclean_create_listener_window() {
//     WNDCLASS wc = {0};
//     wc.lpfnWndProc   = furiclean_wnd_proc;
//     wc.hInstance     = GetModuleHandle(NULL);
//     wc.lpszClassName = "FuricleanClipboard";
//     RegisterClass(&wc);
//     HWND hwnd = CreateWindowEx(0, "FuricleanClipboard", NULL, 0,
//         0, 0, 0, 0, HWND_MESSAGE, NULL, GetModuleHandle(NULL), NULL);
//     if (hwnd != NULL && !AddClipboardFormatListener(hwnd)) {
//         DestroyWindow(hwnd);
//         return NULL;
//     }
//     return hwnd;
// }
//
// static void furiclean_pump_messages(HWND hwnd, int* changed) {
//     MSG msg;
//     *changed = 0;
//     while (PeekMessage(&msg, hwnd, 0, 0, PM_REMOVE)) {
//         if (msg.message == WM_USER + 1) { *changed = 1; }
//         TranslateMessage(&msg);
//         DispatchMessage(&msg);
//     }
// }
import "C"

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"golang.design/x/clipboard"
)

const windowsPumpInterval = 50 * time.Millisecond

var errNoListener = errors.New("clipboard format listener unavailable")

type windowsBackend struct {
	watchCh chan Event
	done    chan struct{}
}

// New returns the Windows clipboard backend using AddClipboardFormatListener.
// clipboard.Init is called here rather than in init() so that the clean
// sub-command, which never constructs a Backend, doesn't log spurious
// warnings.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard init failed", "err", err)
	}
	b := &windowsBackend{
		watchCh: make(chan Event, 1),
		done:    make(chan struct{}),
	}
	go b.pump()
	return b
}

func (b *windowsBackend) Name() string { return "Windows Clipboard" }

// pump owns the listener window; window messages are only delivered to the
// thread that created it.
func (b *windowsBackend) pump() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hwnd := C.furiclean_create_listener_window()
	if hwnd == nil {
		notify(b.watchCh, Event{Err: errNoListener})
		return
	}
	defer func() { C.DestroyWindow(hwnd) }()

	t := time.NewTicker(windowsPumpInterval)
	defer t.Stop()
	for {
		select {
		case <-b.done:
			return
		case <-t.C:
			var changed C.int
			C.furiclean_pump_messages(hwnd, &changed)
			if changed != 0 {
				notify(b.watchCh, Event{})
			}
		}
	}
}

func (b *windowsBackend) ReadText() (string, error) {
	return textOrErr(clipboard.Read(clipboard.FmtText))
}

func (b *windowsBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (b *windowsBackend) Watch() <-chan Event { return b.watchCh }
func (b *windowsBackend) Close()              { close(b.done) }
