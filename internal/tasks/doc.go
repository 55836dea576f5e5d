// Package tasks implements the list-growth strategies and client-side
// refinement that sit between the catalog client and the presentation layers.
//
// Two growth modes exist over the same paged source: [Pager] holds exactly one
// page and refetches on navigation, [Feed] accumulates successive pages.
// Both keep one request in flight at a time and use a generation counter so a
// result that arrives after the view moved on is discarded rather than
// applied. [Refine] narrows and reorders whatever is already in memory; it
// never issues network calls, so filters reflect only the fetched pages.
package tasks
