// Package campus models aggregation with a University and its faculty.
//
// A Directory owns every Teacher. A University only links teachers by
// registry.Handle: it can list them, make them teach and print a roster, but
// it never constructs or destroys them. Consequences:
//
//   - closing a University drops its links; the teachers keep teaching
//   - one teacher may be linked to several universities, or to none
//   - dismissing a teacher from the Directory leaves stale handles behind,
//     which universities skip and can Prune
//
// Departments are the contrasting case (composition): a University creates
// and owns them, and they are destroyed when it closes.
package campus
