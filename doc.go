// Package hotelpager provides page-number pagination for the hotel
// administration dashboard.
//
// # Views
//
// A list view (bookings, rooms, employees, inventory, assets, maintenance and
// work schedules) shows one page of rows and a bar of page buttons:
//   - ComputeWindow: the page buttons to draw, a window of pages around the
//     current one with the first and last page pinned and ellipses for gaps.
//   - PaginationState: current page and totals kept by a view; page changes
//     outside [1, TotalPages] are ignored.
//   - Controls: the rendering contract for the bar (disabled buttons, arrows,
//     "Showing X–Y of Z").
//
// # Backend
//
//   - PagePager: applies ORDER BY / LIMIT / OFFSET to gorm queries.
//   - FetchPage: counts and loads a page into the Page envelope.
//   - Orderings, ParseSort: validated multi-column sorting from client input.
//
// The client package wraps the backend REST API with one typed resource per
// entity, internal/server implements that API over GORM, and cmd/hoteladm is
// the command line front end for both.
package hotelpager
