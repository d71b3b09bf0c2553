package parameter

// Asset paths resolved by the asset loader, relative to the asset root
const (
	SpritePaddle             = "sprite/paddle.png"
	SpriteBall               = "sprite/ball.png"
	SpriteHorizontalBoundary = "sprite/horizontal_boundary.png"
	SpriteVerticalBoundary   = "sprite/vertical_boundary.png"
	SpriteBrick              = "sprite/brick.png"
	FontBlocks               = "font/blocks.ttf"
	AudioHit                 = "audio/hit.mp3"
	AudioDestroy             = "audio/destroy.mp3"
)

// DefaultAssetRoot is the asset directory when neither flag nor config sets one
const DefaultAssetRoot = "assets"
