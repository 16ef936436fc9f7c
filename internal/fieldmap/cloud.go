package fieldmap

import "github.com/dshills/outreg/internal/schema"

// The officer and operator labels say "if any" but both are enforced once the
// cloud category applies.
func cloud() []Field {
	g := schema.GroupCloud
	return []Field{
		{Path: "cloudService.serviceModel", Label: "Cloud service model", Citation: "54.h", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(cloudOf(r).ServiceModel) }},
		{Path: "cloudService.deploymentModel", Label: "Cloud deployment model", Citation: "54.h", Type: TypeEnum, Group: g,
			Value: func(r *schema.Record) any { return string(cloudOf(r).DeploymentModel) }},
		{Path: "cloudService.dataNature", Label: "Nature of the data held", Citation: "54.h", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return cloudOf(r).DataNature }},
		{Path: "cloudService.storageLocations", Label: "Storage locations", Citation: "54.h", Type: TypeList, Group: g,
			Value: func(r *schema.Record) any { return cloudOf(r).StorageLocations }},
		{Path: "cloudService.cloudOfficer", Label: "Cloud officer (if any)", Citation: "54.h", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return cloudOf(r).CloudOfficer }},
		{Path: "cloudService.resourceOperator", Label: "Resource operator (if any)", Citation: "54.h", Type: TypeText, Group: g,
			Value: func(r *schema.Record) any { return cloudOf(r).ResourceOperator }},
	}
}
