/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "github.com/jrmuizel/pdf-extract/core"

// fakeDoc is a minimal core.Document for tests that only ever hand this
// package literal objects, never indirect references: Resolve is the
// identity function (except on nil, which becomes Null, matching
// Document.Resolve's documented "dangling reference resolves to Null"
// contract) and every other method is an unused stub.
type fakeDoc struct{}

func (fakeDoc) Resolve(obj core.Object) core.Object {
	if obj == nil {
		return core.Null{}
	}
	return obj
}

func (fakeDoc) IsEncrypted() bool                                    { return false }
func (fakeDoc) Decrypt(password []byte) error                        { return nil }
func (fakeDoc) Pages() []core.Object                                 { return nil }
func (fakeDoc) PageContent(streamRef core.Object) ([]byte, error)    { return nil, nil }
func (fakeDoc) Info() core.Object                                    { return core.Null{} }
