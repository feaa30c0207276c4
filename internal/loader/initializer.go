package loader

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/yourusername/airefiner/internal/catalog"
	"github.com/yourusername/airefiner/internal/provider"
)

// CatalogSource resolves the current model catalog. *catalog.Cache is the
// production implementation.
type CatalogSource interface {
	Get(ctx context.Context) *catalog.Snapshot
}

// Initializer turns a resolved catalog into live model handles. Failures are
// data: every catalog key ends up either in the initialized set or in the
// error map with a human-readable reason, never in both and never in neither.
type Initializer struct {
	source     CatalogSource
	creds      map[catalog.Provider]string
	credParams map[catalog.Provider]string
	bindings   map[catalog.Provider]Binding
}

// NewInitializer wires an initializer over a catalog source, the available
// credentials, and the per-provider binding registry.
func NewInitializer(source CatalogSource, creds map[catalog.Provider]string, bindings map[catalog.Provider]Binding) *Initializer {
	return &Initializer{
		source:     source,
		creds:      creds,
		credParams: CredentialParams(bindings),
		bindings:   bindings,
	}
}

// Initialize resolves the catalog and attempts to build a client per model
// definition. One broken model never prevents sibling models from
// initializing; per-provider skips (unconfigured, missing client support,
// missing credential) mark every model of that provider. An empty result set
// is not an error here: the caller decides whether that is fatal.
func (in *Initializer) Initialize(ctx context.Context) (map[string]provider.Model, map[string]string) {
	models := make(map[string]provider.Model)
	errs := make(map[string]string)

	snapshot := in.source.Get(ctx)
	for prov, defs := range snapshot.Providers {
		in.initProvider(prov, defs, models, errs)
	}

	log.WithFields(log.Fields{"initialized": len(models), "failed": len(errs)}).
		Info("model initialization complete")
	return models, errs
}

func (in *Initializer) initProvider(prov catalog.Provider, defs []catalog.ModelDefinition, models map[string]provider.Model, errs map[string]string) {
	credParam, configured := in.credParams[prov]
	if !configured || credParam == "" {
		log.WithField("provider", prov).Warn("skipping provider: no credential parameter mapping")
		markAll(defs, errs, fmt.Sprintf("provider %q is not configured in the credential parameter mapping", prov))
		return
	}

	binding := in.bindings[prov]
	if binding.Construct == nil {
		log.WithField("provider", prov).Warn("skipping provider: client support unavailable")
		markAll(defs, errs, fmt.Sprintf("client support for provider %q is unavailable", prov))
		return
	}

	apiKey := in.creds[prov]
	if apiKey == "" {
		log.WithField("provider", prov).Warn("skipping provider: credential not found")
		markAll(defs, errs, fmt.Sprintf("%s API key not found", prov))
		return
	}

	for _, def := range defs {
		// Configuration-integrity check, independent of credentials.
		if def.IDParamName == "" {
			errs[def.Key] = fmt.Sprintf("configuration error: id parameter name missing for %s", def.Key)
			continue
		}
		if def.RawID == "" {
			errs[def.Key] = fmt.Sprintf("configuration error: raw model identifier missing for %s", def.Key)
			continue
		}

		args := mergeArgs(def, credParam, apiKey)
		modelID, err := stringArg(args, def.IDParamName)
		if err != nil {
			errs[def.Key] = fmt.Sprintf("failed to initialize %s: %v", def.Key, err)
			continue
		}
		credential, err := stringArg(args, credParam)
		if err != nil {
			errs[def.Key] = fmt.Sprintf("failed to initialize %s: %v", def.Key, err)
			continue
		}

		handle, err := binding.Construct(def.Key, modelID, credential, args)
		if err != nil {
			errs[def.Key] = fmt.Sprintf("failed to initialize %s: %v", def.Key, err)
			log.WithField("model", def.Key).WithError(err).Error("model initialization failed")
			continue
		}

		models[def.Key] = handle
		log.WithField("model", def.Key).Debug("initialized model")
	}
}

func markAll(defs []catalog.ModelDefinition, errs map[string]string, reason string) {
	for _, def := range defs {
		errs[def.Key] = reason
	}
}
