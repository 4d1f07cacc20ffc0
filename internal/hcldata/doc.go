// Package hcldata is the HCL implementation of config.Loader. It reads
// `source` and `data` blocks from .hcl files:
//
//	source "pvsim" {
//	  timezone = "UTC-08:00"
//	}
//
//	data "irradiance" {
//	  value = 1000
//	  units = "W/m**2"
//	  meta = {
//	    temperature = { value = 2, units = "%" }
//	  }
//	}
//
// Attribute values are evaluated without variables or functions and
// converted from cty into plain Go values (float64, string, bool, []any,
// map[string]any).
package hcldata
