package scope

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithScope_RoundTrip(t *testing.T) {
	ctx := WithScope(context.Background(), Scope{TenantID: 7, FarmID: 3})

	sc, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(7), sc.TenantID)
	assert.Equal(t, uint(3), sc.FarmID)
}

func TestFromContext_Unbound(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	_, ok = FromContext(nil) //nolint:staticcheck // absence behavior is part of the contract
	assert.False(t, ok)
}

func TestWithScope_NestedOverride(t *testing.T) {
	ctx := WithScope(context.Background(), Scope{TenantID: 1, FarmID: 1})
	inner := WithScope(ctx, Scope{TenantID: 2, FarmID: 9})

	sc, ok := FromContext(inner)
	require.True(t, ok)
	assert.Equal(t, uint(2), sc.TenantID)

	sc, ok = FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(1), sc.TenantID)
}

func TestWithScope_ConcurrentOperationsDoNotLeak(t *testing.T) {
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n uint) {
			defer wg.Done()
			ctx := WithScope(context.Background(), Scope{TenantID: n, FarmID: n * 10})

			done := make(chan struct{})
			go func() {
				// a nested goroutine of the same logical operation sees the same pair
				sc, ok := FromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, n, sc.TenantID)
				assert.Equal(t, n*10, sc.FarmID)
				close(done)
			}()
			<-done
		}(uint(i))
	}
	wg.Wait()
}
