// Package flash implements the physical device of the sim package: pages of analog
// cell levels, blocks that erase as a unit, and the wear models that perturb levels
// as they are programmed.
//
// A cell may be programmed only while its level is 0. The only way back to 0 is a
// block erase, which bumps the wear counter of every page in the block.
package flash
