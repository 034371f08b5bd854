package templates

// DatastarScriptURL is the client bundle matching datastar-go v1.
const DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"
