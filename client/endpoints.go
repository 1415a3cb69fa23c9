package client

// Default service locations.
const (
	DefaultBaseURL         = "https://api.thenextleg.io/v2"
	DefaultUpscaleBaseURL  = "https://api.thenextleg.io"
	DefaultLoadBalancerURL = "https://api.thenextleg.io/loadBalancer"
)

// Operation names, used for logs, spans and metrics labels.
const (
	opImagine               = "imagine"
	opImg2Img               = "img2img"
	opDescribe              = "describe"
	opButton                = "button"
	opGetSeed               = "getSeed"
	opSlashCommand          = "slashCommand"
	opGetSettings           = "getSettings"
	opSetSettings           = "setSettings"
	opGetInfo               = "getInfo"
	opGetMessageAndProgress = "getMessageAndProgress"
	opUpscaleImgURL         = "upscaleImgUrl"
)

// Path segments.
const (
	pathImagine       = "imagine"
	pathDescribe      = "describe"
	pathButton        = "button"
	pathSeed          = "seed"
	pathSlashCommands = "slash-commands"
	pathSettings      = "settings"
	pathInfo          = "info"
	pathMessage       = "message"
	pathUpscaleImgURL = "upscale-img-url"
)

// Query parameter names.
const (
	paramExpireMins      = "expireMins"
	paramLoadBalanceID   = "loadBalanceId"
	paramButtonMessageID = "buttonMessageId"
	paramButton          = "button"
)
