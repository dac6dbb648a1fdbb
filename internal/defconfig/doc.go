// Package defconfig resolves a board's defconfig against the hypervisor
// defaults and renders auto.conf and config.h.
//
// Resolution is layered: the defaults table is never modified, explicit
// settings are laid over it and the result remembers which keys the user
// set.
package defconfig
