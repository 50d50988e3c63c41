package nav

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubFactory(do.Injector) fyne.CanvasObject {
	return widget.NewLabel("stub")
}

func TestNewTable(t *testing.T) {
	t.Run("resolves every registered route", func(t *testing.T) {
		table, err := NewTable(
			Route{Name: "/", Factory: stubFactory, Transition: TransitionFadeIn},
			Route{Name: "/a", Factory: stubFactory, Transition: TransitionRightToLeft},
			Route{Name: "/b", Factory: stubFactory, Transition: TransitionLeftToRight},
		)
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())
		assert.Equal(t, []string{"/", "/a", "/b"}, table.Names())

		r, err := table.Resolve("/a")
		require.NoError(t, err)
		assert.Equal(t, "/a", r.Name)
		assert.Equal(t, TransitionRightToLeft, r.Transition)
		assert.NotNil(t, r.Factory)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewTable(
			Route{Name: "/dup", Factory: stubFactory},
			Route{Name: "/dup", Factory: stubFactory},
		)
		assert.ErrorContains(t, err, "duplicate route")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewTable(Route{Factory: stubFactory})
		assert.ErrorContains(t, err, "empty name")
	})

	t.Run("rejects missing factory", func(t *testing.T) {
		_, err := NewTable(Route{Name: "/nofactory"})
		assert.ErrorContains(t, err, "no factory")
	})
}

func TestTableResolveUnknown(t *testing.T) {
	table := MustTable(Route{Name: "/", Factory: stubFactory})

	_, err := table.Resolve("/unknown-path")
	require.Error(t, err)
	assert.True(t, IsRouteNotFound(err))

	var rnf *RouteNotFoundError
	require.ErrorAs(t, err, &rnf)
	assert.Equal(t, "/unknown-path", rnf.Name)
}

func TestTransitionString(t *testing.T) {
	assert.Equal(t, "fadeIn", TransitionFadeIn.String())
	assert.Equal(t, "rightToLeft", TransitionRightToLeft.String())
	assert.Equal(t, "leftToRight", TransitionLeftToRight.String())
	assert.Equal(t, "none", TransitionNone.String())
}
