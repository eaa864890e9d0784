package models

// ReleaseKind selects a firmware or bootloader catalog.
type ReleaseKind string

const (
	ReleaseFirmware   ReleaseKind = "firmware"
	ReleaseBootloader ReleaseKind = "bootloader"
)

// Release is one published firmware or bootloader build.
type Release struct {
	ID                string      `json:"id"`
	Kind              ReleaseKind `json:"kind"`
	Version           string      `json:"version"`
	HardwareVersions  []string    `json:"supportedHardwareVersions"`
	MinimumAppVersion string      `json:"minimumAppVersion,omitempty"`
	ReleaseLevel      int         `json:"releaseLevel"`
	DownloadURL       string      `json:"downloadUrl,omitempty"`
	CreatedAt         Timestamp   `json:"createdAt"`
}

// CatalogReply maps a hardware version to the highest release available
// for it.
type CatalogReply struct {
	Status ItemStatus        `json:"status"`
	Data   map[string]string `json:"data"`
}

// KeyType classifies a sphere encryption key.
type KeyType string

const (
	KeyAdmin           KeyType = "ADMIN_KEY"
	KeyMember          KeyType = "MEMBER_KEY"
	KeyBasic           KeyType = "BASIC_KEY"
	KeyLocalization    KeyType = "LOCALIZATION_KEY"
	KeyServiceData     KeyType = "SERVICE_DATA_KEY"
	KeyMeshApplication KeyType = "MESH_APPLICATION_KEY"
	KeyMeshNetwork     KeyType = "MESH_NETWORK_KEY"
	KeyMeshDevice      KeyType = "MESH_DEVICE_KEY"
)

// SphereKey is a single symmetric key of a sphere.
type SphereKey struct {
	ID        string    `json:"id"`
	SphereID  string    `json:"-"`
	KeyType   KeyType   `json:"keyType"`
	Key       string    `json:"key"`
	TTL       int       `json:"ttl"`
	CreatedAt Timestamp `json:"createdAt"`
}

// SphereKeys groups the keys of one sphere that the caller may see.
type SphereKeys struct {
	SphereID   string      `json:"sphereId"`
	SphereKeys []SphereKey `json:"sphereKeys"`
}

// KeysReply is the keys section of a sync reply.
type KeysReply struct {
	Status ItemStatus   `json:"status"`
	Data   []SphereKeys `json:"data"`
}
