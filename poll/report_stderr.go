package poll

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

var stderrMu sync.Mutex

func reportPanicToStderr(info PanicInfo) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "poll: panic")
	if info.Name != "" {
		fmt.Fprintf(&buf, " name=%q", info.Name)
	}
	fmt.Fprintf(&buf, " value=%v\n", info.Value)
	if len(info.Stack) > 0 {
		_, _ = buf.Write(info.Stack)
		// Avoid []byte->string allocation: check last byte.
		if info.Stack[len(info.Stack)-1] != '\n' {
			_ = buf.WriteByte('\n')
		}
	}

	stderrMu.Lock()
	_, _ = os.Stderr.Write(buf.Bytes())
	stderrMu.Unlock()
}

func reportErrorToStderr(info ErrorInfo) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "poll: error")
	if info.Name != "" {
		fmt.Fprintf(&buf, " name=%q", info.Name)
	}
	fmt.Fprintf(&buf, " err=%v\n", info.Err)

	stderrMu.Lock()
	_, _ = os.Stderr.Write(buf.Bytes())
	stderrMu.Unlock()
}
