package gcp

import (
	"fmt"
	"sort"
	"strings"
)

// assetTypeAliases maps operator-facing short names to full asset type
// strings accepted by the asset search API.
var assetTypeAliases = map[string]string{
	"bucket":              "storage.googleapis.com/Bucket",
	"ca":                  "privateca.googleapis.com/CertificateAuthority",
	"ca-pool":             "privateca.googleapis.com/CaPool",
	"cloud-run":           "run.googleapis.com/Service",
	"dataproc-cluster":    "dataproc.googleapis.com/Cluster",
	"disks":               "compute.googleapis.com/Disk",
	"dnszone":             "dns.googleapis.com/ManagedZone",
	"filestore-instance":  "file.googleapis.com/Instance",
	"gke-cluster":         "container.googleapis.com/Cluster",
	"logbucket":           "logging.googleapis.com/LogBucket",
	"memcacheinstance":    "memcache.googleapis.com/Instance",
	"networkhub":          "networkconnectivity.googleapis.com/Hub",
	"networkspoke":        "networkconnectivity.googleapis.com/Spoke",
	"project":             "compute.googleapis.com/Project",
	"pubsub-subscription": "pubsub.googleapis.com/Subscription",
	"pubsub-topic":        "pubsub.googleapis.com/Topic",
	"regiondisk":          "compute.googleapis.com/RegionDisk",
	"reservation":         "compute.googleapis.com/Reservation",
	"route":               "compute.googleapis.com/Route",
	"router":              "compute.googleapis.com/Router",
	"secret":              "secretmanager.googleapis.com/Secret",
	"securitypolicy":      "compute.googleapis.com/SecurityPolicy",
	"serviceaccount":      "iam.googleapis.com/ServiceAccount",
	"snapshot":            "compute.googleapis.com/Snapshot",
	"spanner-instance":    "spanner.googleapis.com/Instance",
	"sql-instance":        "sqladmin.googleapis.com/Instance",
	"sslcert":             "compute.googleapis.com/SslCertificate",
	"sslpolicy":           "compute.googleapis.com/SslPolicy",
	"subnet":              "compute.googleapis.com/Subnetwork",
	"svcattachment":       "compute.googleapis.com/ServiceAttachment",
	"target-http-proxy":   "compute.googleapis.com/TargetHttpProxy",
	"target-https-proxy":  "compute.googleapis.com/TargetHttpsProxy",
	"target-instance":     "compute.googleapis.com/TargetInstance",
	"target-pool":         "compute.googleapis.com/TargetPool",
	"target-ssl-proxy":    "compute.googleapis.com/TargetSslProxy",
	"target-vpn-gateway":  "compute.googleapis.com/TargetVpnGateway",
	"urlmap":              "compute.googleapis.com/UrlMap",
	"vm":                  "compute.googleapis.com/Instance",
	"vpc":                 "compute.googleapis.com/Network",
	"vpc-connector":       "vpcaccess.googleapis.com/Connector",
	"vpngateway":          "compute.googleapis.com/VpnGateway",
	"vpntunnel":           "compute.googleapis.com/VpnTunnel",
}

// ResolveAssetType turns an alias into a full asset type string. Values that
// already look like full asset types pass through unchanged. An unknown value
// is a user input error, surfaced before any network call.
func ResolveAssetType(value string) (string, error) {
	if fullType, ok := assetTypeAliases[value]; ok {
		return fullType, nil
	}
	if dot := strings.Index(value, "."); dot > 0 && strings.Contains(value[dot:], "/") {
		return value, nil
	}
	return "", fmt.Errorf("%w: %q (run with --type help to list known aliases)", ErrUnknownResourceAlias, value)
}

// AssetTypeAliases returns the alias table as sorted "alias -> type" lines.
func AssetTypeAliases() []string {
	aliases := make([]string, 0, len(assetTypeAliases))
	for alias := range assetTypeAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	lines := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		lines = append(lines, fmt.Sprintf("%-22s %s", alias, assetTypeAliases[alias]))
	}
	return lines
}
