/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"go.uber.org/zap"

	"bennypowers.dev/wmtokens/cssvars"
	"bennypowers.dev/wmtokens/document"
	"bennypowers.dev/wmtokens/panel"
	"bennypowers.dev/wmtokens/tokens"
)

// Preview returns the preview document, or a nil interface when there is
// none.
func (p *Project) Preview() document.Document {
	if p.Document == nil {
		return nil
	}
	return p.Document
}

// Extractor returns the preview document's extractor from reg. A nil reg or
// a project without preview gets a fresh, unshared extractor.
func (p *Project) Extractor(reg *cssvars.Registry, log *zap.Logger) *cssvars.Extractor {
	if reg != nil && p.DocumentID != "" {
		return reg.For(p.DocumentID)
	}
	return cssvars.New(cssvars.WithLogger(log))
}

// References extracts the preview's variables and builds the reference map.
func (p *Project) References(reg *cssvars.Registry, log *zap.Logger) cssvars.ReferenceMap {
	e := p.Extractor(reg, log)
	return e.BuildReferenceMap(e.ExtractVariables(p.Preview()))
}

// Component parses componentKey against the preview's variables.
func (p *Project) Component(reg *cssvars.Registry, componentKey string, log *zap.Logger) (*tokens.ComponentConfig, error) {
	return tokens.ParseComponentTokens(p.Tree, componentKey, p.References(reg, log))
}

// Panel creates a panel for componentKey and loads it from the preview.
func (p *Project) Panel(reg *cssvars.Registry, componentKey string, log *zap.Logger) (*panel.Panel, error) {
	pn := panel.New(p.Tree, componentKey,
		panel.WithExtractor(p.Extractor(reg, log)),
		panel.WithLogger(log))
	if err := pn.Load(p.Preview()); err != nil {
		return nil, err
	}
	return pn, nil
}
