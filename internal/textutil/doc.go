// Package textutil holds small text helpers shared across rigforge.
package textutil
