// Package widget owns the load/query/paginate/render cycle and the view
// state behind it. The display surface is abstracted into regions so the
// cycle can be driven and asserted on without any real display.
package widget

import "github.com/aluiziolira/go-catalog-widget/view"

// CardGrid is the one region a surface must provide.
type CardGrid interface {
	SetCards(cards []view.Card)
	ShowEmpty(message string)
}

// CountRegion shows the full matched count.
type CountRegion interface {
	SetCount(n int)
}

// RefreshControl can be disabled while a load is in flight.
type RefreshControl interface {
	SetEnabled(enabled bool)
}

// ToastRegion displays transient notifications.
type ToastRegion interface {
	Show(message string)
	Hide()
}

// PaginationRegion shows the navigation controls.
type PaginationRegion interface {
	SetControls(prev, next bool, page, totalPages int)
	Clear()
}

// Surface is the set of display regions the controller drives. CardGrid is
// required; every other region may be nil, in which case its updates are
// skipped.
type Surface struct {
	CardGrid   CardGrid
	Count      CountRegion
	Refresh    RefreshControl
	Toast      ToastRegion
	Pagination PaginationRegion
}
