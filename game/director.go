package game

type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Board)

	/**
	 * Perform a single step of actions, reporting false once there is nothing
	 * left to do
	 */
	Act() (RevealOutcome, bool)
}
