// This file is part of Go64.
//
// Go64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Go64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.

// Package errors is a helper package for the plain Go language error type. We
// think of these errors as curated errors: every one the core returns is
// built from one of the message constants in messages.go, so callers can
// match on the message rather than parsing free text. External to this
// package, curated errors are referenced as plain errors (ie. they implement
// the error interface).
//
// Internally, errors are thought of as being composed of parts, as described
// by The Go Programming Language (Donovan, Kernighan): "When the error is
// ultimately handled by the program's main function, it should provide a clear
// causal chain from the root of the problem to the overal failure".
//
// The Error() function implementation for curated errors ensures that this
// chain is normalised. Specifically, that the chain does not contain duplicate
// adjacent parts. The practical advantage of this is that it alleviates the
// problem of when and how to wrap errors. For example, loading a cartridge
// goes through cartridgeloader, cartridge.Attach and the specific mapper's
// constructor, each of which wraps whatever the layer below returned:
//
//	func Attach(path string) (*Cartridge, error) {
//		img, err := cartridgeloader.Load(path)
//		if err != nil {
//			return nil, errors.Errorf(errors.CartridgeError, err)
//		}
//		cart, err := newMapper(img)
//		if err != nil {
//			return nil, errors.Errorf(errors.CartridgeError, err)
//		}
//		return cart, nil
//	}
//
//	func newMapper(img *crt.Image) (*Cartridge, error) {
//		if !supported(img.crtType) {
//			return nil, errors.Errorf(errors.UnsupportedCartMsg, img.crtType)
//		}
//		return nil, errors.Errorf(errors.CartridgeError, "bank 0 missing")
//	}
//
// Without normalisation, a failure three layers down would print as
//
//	cartridge error: cartridge error: bank 0 missing
//
// The curated Error() implementation collapses the duplicate adjacent part,
// so the caller sees just
//
//	cartridge error: bank 0 missing
//
package errors
