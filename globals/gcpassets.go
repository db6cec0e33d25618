package globals

const GCPASSETS_VERSION = "1.2.0"

// Module names
const GCP_HIERARCHY_MODULE_NAME = "hierarchy"
const GCP_LIST_RESOURCES_MODULE_NAME = "list-resources"

// Local state
const GCPASSETS_LOG_FILE_DIR_NAME = ".gcpassets"
const GCPASSETS_ERROR_LOG_FILE_NAME = "gcpassets-error.log"

// Cloud Resource Manager asset types returned by the asset search API
const GCP_ORGANIZATION_ASSET_TYPE = "cloudresourcemanager.googleapis.com/Organization"
const GCP_FOLDER_ASSET_TYPE = "cloudresourcemanager.googleapis.com/Folder"
const GCP_PROJECT_ASSET_TYPE = "cloudresourcemanager.googleapis.com/Project"

// Parent references come back as full resource names with this prefix
const GCP_CRM_RESOURCE_PREFIX = "//cloudresourcemanager.googleapis.com/"
