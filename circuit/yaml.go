// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package circuit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OpenYAML reads parameters from a YAML file into obj, which should already
// hold its defaults: fields not present in the file keep their values.
// Derived values are updated after reading.
func OpenYAML(obj Updater, filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("circuit: reading params file: %w", err)
	}
	if err := yaml.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("circuit: parsing params file %s: %w", filename, err)
	}
	obj.Update()
	return nil
}

// SaveYAML writes the parameters in obj to a YAML file
func SaveYAML(obj any, filename string) error {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
