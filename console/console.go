package console

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/fennecsec/gcpassets/globals"
	"github.com/fennecsec/gcpassets/internal"
)

const clearln = "\r\x1b[2K"

var cyan = color.New(color.FgCyan).SprintFunc()

// CommandCounter tracks progress of a long-running fetch. Fields are updated
// atomically because the spinner goroutine reads them while the fetch writes.
type CommandCounter struct {
	Complete int64
	Error    int64
}

func (c *CommandCounter) AddComplete(n int) {
	atomic.AddInt64(&c.Complete, int64(n))
}

func (c *CommandCounter) AddError(n int) {
	atomic.AddInt64(&c.Error, int64(n))
}

// SpinUntil prints a status line every second until done receives a value,
// then prints the final count and closes the channel.
func SpinUntil(callingModuleName string, counter *CommandCounter, done chan bool, unit string) {
	defer close(done)
	errLog := filepath.Join(internal.GetLogDirPath(), globals.GCPASSETS_ERROR_LOG_FILE_NAME)
	for {
		select {
		case <-time.After(1 * time.Second):
			fmt.Printf(clearln+"[%s] Status: %d %s fetched (%d errors -- For details check %s)",
				cyan(callingModuleName), atomic.LoadInt64(&counter.Complete), unit, atomic.LoadInt64(&counter.Error), errLog)
		case <-done:
			fmt.Printf(clearln+"[%s] Status: %d %s fetched (%d errors -- For details check %s)\n",
				cyan(callingModuleName), atomic.LoadInt64(&counter.Complete), unit, atomic.LoadInt64(&counter.Error), errLog)
			done <- true
			return
		}
	}
}
