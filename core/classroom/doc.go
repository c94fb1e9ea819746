// Package classroom talks to the classroom platform's REST API and
// materializes platform rosters into the domain types the reconciliation
// engine consumes.
//
// # Components
//
//   - Client: read-only access to the platform. List endpoints are paged;
//     the client follows nextPageToken until exhaustion and returns courses
//     and rosters in the order the API supplied them, which downstream code
//     treats as the tie-breaking order.
//   - Snapshot / FetchSnapshot: one complete platform state (all courses
//     plus every course's roster), fetched with a bounded number of
//     concurrent roster calls.
//   - SnapshotCache: TTL cache over FetchSnapshot with stampede protection,
//     so bursts of audit requests share one upstream crawl.
//   - WriteSnapshot / LoadSnapshot: JSON file persistence for offline runs,
//     letting the CLI reconcile against a previously saved platform state
//     without touching the network.
//
// The package never mutates anything on the platform; every call is a read.
package classroom
