/*
 * udp4 - Registry test cases.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package udp

import (
	"errors"
	"testing"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	def, err := Compile("AND2", Combinational, 2, []string{"111"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if err := r.Register(def); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := r.Lookup("AND2")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != def {
		t.Fatalf("Lookup returned a different *Definition than was registered")
	}
}

func TestRegistryDuplicateLabel(t *testing.T) {
	r := NewRegistry()
	def1, _ := Compile("AND2", Combinational, 2, []string{"111"})
	def2, _ := Compile("AND2", Combinational, 2, []string{"000"})

	if err := r.Register(def1); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := r.Register(def2)
	if !errors.Is(err, ErrDuplicateDefinition) {
		t.Fatalf("err = %v, want ErrDuplicateDefinition", err)
	}
}

func TestRegistryUnknownLabel(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup("NOPE")
	if !errors.Is(err, ErrUnknownDefinition) {
		t.Fatalf("err = %v, want ErrUnknownDefinition", err)
	}
}

func TestRegistryLabels(t *testing.T) {
	r := NewRegistry()
	def1, _ := Compile("AND2", Combinational, 2, []string{"111"})
	def2, _ := Compile("OR2", Combinational, 2, []string{"000"})
	r.Register(def1)
	r.Register(def2)

	labels := r.Labels()
	if len(labels) != 2 {
		t.Fatalf("Labels() returned %d entries, want 2", len(labels))
	}
	seen := map[string]bool{}
	for _, l := range labels {
		seen[l] = true
	}
	if !seen["AND2"] || !seen["OR2"] {
		t.Fatalf("Labels() = %v, want AND2 and OR2", labels)
	}
}

func TestRegistryLabelsEmpty(t *testing.T) {
	r := NewRegistry()
	if labels := r.Labels(); len(labels) != 0 {
		t.Fatalf("Labels() on empty registry = %v, want empty", labels)
	}
}
