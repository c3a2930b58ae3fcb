package route_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp/route"
)

func TestInit(t *testing.T) {
	// Arrange
	require.Nil(t, route.Default())

	// Act
	reg, err := route.Init([]route.Definition{{Path: "about"}})

	// Assert
	require.ErrorIs(t, err, route.ErrMalformedPattern)
	require.Nil(t, reg)
	require.Nil(t, route.Default())

	// Arrange
	defs := []route.Definition{{Path: "/about", Component: component("about")}}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		inits int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Act
			_, err := route.Init(defs)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
				return
			}

			if err == route.ErrInitialized {
				inits++
			}
		}()
	}

	wg.Wait()

	// Assert
	require.Equal(t, 1, wins)
	require.Equal(t, 9, inits)
	require.NotNil(t, route.Default())
	require.Equal(t, "/about", route.Default().Resolve("/about").Definition.ID)
}
