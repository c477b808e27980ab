// Package packagemanager decides which npm-family package manager a run
// uses and how one-off scaffolding tools are invoked through it.
//
// Resolution tries, in order: the preferred manager if it is installed,
// the manager detected from lockfiles or the npm user agent if it is
// installed, and then the first installed manager in npm, pnpm, yarn order.
// Detection is best effort; its failures are logged and ignored.
package packagemanager
