package api

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_SetGetClear(t *testing.T) {
	session := NewSession()
	assert.Empty(t, session.Token())
	assert.False(t, session.Authenticated())

	session.Set("abc")
	assert.Equal(t, "abc", session.Token())
	assert.True(t, session.Authenticated())

	session.Set("xyz")
	assert.Equal(t, "xyz", session.Token())

	session.Clear()
	assert.Empty(t, session.Token())
	assert.False(t, session.Authenticated())
}

func TestSession_ConcurrentAccess(t *testing.T) {
	session := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			session.Set("abc")
		}()
		go func() {
			defer wg.Done()
			_ = session.Token()
		}()
	}
	wg.Wait()

	assert.Equal(t, "abc", session.Token())
}
