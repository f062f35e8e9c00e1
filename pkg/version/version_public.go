package version

// BuildKind stores what type of release this is.
const BuildKind = "public"
