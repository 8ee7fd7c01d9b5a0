// Package contracts holds the ABI registry for the contract interfaces the
// indexer talks to. Definitions are loaded once at startup from a JSON file
// keyed by contract name.
package contracts

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/ibet-fin/ibet-indexer/internal/adapter"
	"github.com/ibet-fin/ibet-indexer/internal/domain"
)

// Well-known contract names beyond the token templates
const (
	NameTokenList = "TokenList"
	NameExchange  = "IbetExchange"
)

// Registry resolves contract names to their raw and parsed ABIs
type Registry struct {
	raw    map[string]json.RawMessage
	parsed map[string]abi.ABI
}

// LoadRegistry reads the contract definition file and parses every ABI in it
func LoadRegistry(fs adapter.FileSystem, jsonAdapter adapter.JSON, path string) (*Registry, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contract definitions: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := jsonAdapter.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse contract definitions: %w", err)
	}

	parsed := make(map[string]abi.ABI, len(raw))
	for name, definition := range raw {
		contractABI, err := abi.JSON(bytes.NewReader(definition))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI for %s: %w", name, err)
		}
		parsed[name] = contractABI
	}

	for _, required := range []string{
		string(domain.TemplateStraightBond),
		string(domain.TemplateShare),
		string(domain.TemplateMembership),
		string(domain.TemplateCoupon),
		NameTokenList,
		NameExchange,
	} {
		if _, ok := parsed[required]; !ok {
			return nil, fmt.Errorf("contract definitions missing %s", required)
		}
	}

	return &Registry{raw: raw, parsed: parsed}, nil
}

// RawABI returns the JSON ABI definition for a contract name
func (r *Registry) RawABI(name string) (json.RawMessage, bool) {
	definition, ok := r.raw[name]
	return definition, ok
}

// ABI returns the parsed ABI for a contract name
func (r *Registry) ABI(name string) (abi.ABI, bool) {
	contractABI, ok := r.parsed[name]
	return contractABI, ok
}

// TemplateABI returns the parsed ABI for a token template
func (r *Registry) TemplateABI(template domain.TokenTemplate) (abi.ABI, bool) {
	return r.ABI(string(template))
}
