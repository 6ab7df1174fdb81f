package ripple

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		log := []string{}

		count := NewSignal(0)

		NewEffect(func() {
			c := Untrack(count.Read)
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Write(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("restores tracking afterwards", func(t *testing.T) {
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)

		NewEffect(func() {
			ignored := Untrack(a.Read)
			log = append(log, fmt.Sprintf("effect a=%d b=%d", ignored, b.Read()))
		})

		a.Write(1) // untracked, no re-run
		b.Write(2) // tracked read after Untrack still registered

		assert.Equal(t, []string{
			"effect a=0 b=0",
			"effect a=1 b=2",
		}, log)
	})
}
