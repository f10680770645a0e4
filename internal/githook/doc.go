// Package githook installs generated git hook scripts into a hook directory.
//
// Each configured [Event] gets one executable shell script at
// <hooks dir>/<event>. The script runs the configured command line verbatim.
// Every generated script carries [Marker] on its second line. That marker is
// how a later run tells its own files apart from hooks written by hand:
//
//   - configured events are (re)written, replacing whatever was there; a
//     hand-written hook being replaced is reported as a warning
//   - unconfigured events have their generated script removed, while
//     hand-written hooks are left untouched
//
// [Install] is idempotent: the same configuration always yields byte-identical
// files. It is not transactional. Per-event failures are collected into a
// [*PartialFailureError] while the remaining events are still applied.
//
// [Plan] reports what Install would do without writing anything and
// [Inspect] reports the on-disk state of every event.
package githook
