package astro

// OrbitalElements holds a body's Keplerian elements at J2000.0 plus secular
// rates per Julian century (Standish 1992). Angles in degrees, semi-major
// axis in AU. The table is never mutated after construction.
type OrbitalElements struct {
	L0, L1 float64 // mean longitude and rate
	A      float64 // semi-major axis
	E0, E1 float64 // eccentricity and rate
	I0, I1 float64 // inclination and rate
	W0, W1 float64 // longitude of ascending node and rate
	P0, P1 float64 // longitude of perihelion and rate
}

// orbitalElements covers the nine planets plus earth, which is used only as
// the observer body in geocentric conversions.
var orbitalElements = map[string]OrbitalElements{
	"mercury": {
		L0: 252.25032350, L1: 149472.67411175,
		A: 0.38709927, E0: 0.20563593, E1: 0.00001906,
		I0: 7.00497902, I1: -0.00594749,
		W0: 48.33076593, W1: -0.12534081,
		P0: 77.45779628, P1: 0.16047689,
	},
	"venus": {
		L0: 181.97909950, L1: 58517.81538729,
		A: 0.72333566, E0: 0.00677672, E1: -0.00004107,
		I0: 3.39467605, I1: -0.00078890,
		W0: 76.67984255, W1: -0.27769418,
		P0: 131.60246718, P1: 0.00268329,
	},
	"earth": {
		L0: 100.46457166, L1: 35999.37244981,
		A: 1.00000261, E0: 0.01671123, E1: -0.00004392,
		I0: 0.00001531, I1: -0.01294668,
		W0: 0.0, W1: 0.0,
		P0: 102.93768193, P1: 0.32327364,
	},
	"mars": {
		L0: 355.44656299, L1: 19140.30268499,
		A: 1.52371034, E0: 0.09339410, E1: 0.00007882,
		I0: 1.84969142, I1: -0.00813131,
		W0: 49.55953891, W1: -0.29257343,
		P0: 336.05637041, P1: 0.44441088,
	},
	"jupiter": {
		L0: 34.39644051, L1: 3034.74612775,
		A: 5.20288700, E0: 0.04838624, E1: -0.00013253,
		I0: 1.30439695, I1: -0.00183714,
		W0: 100.47390909, W1: 0.20469106,
		P0: 14.72847983, P1: 0.21252668,
	},
	"saturn": {
		L0: 49.95424423, L1: 1222.49362201,
		A: 9.53667594, E0: 0.05386179, E1: -0.00050991,
		I0: 2.48599187, I1: 0.00193609,
		W0: 113.66242448, W1: -0.28867794,
		P0: 92.59887831, P1: -0.41897216,
	},
	"uranus": {
		L0: 313.23810451, L1: 428.48202785,
		A: 19.18916464, E0: 0.04725744, E1: -0.00004397,
		I0: 0.77263783, I1: -0.00242939,
		W0: 74.01692503, W1: 0.04240589,
		P0: 170.95427630, P1: 0.40805281,
	},
	"neptune": {
		L0: 304.87997031, L1: 218.45945325,
		A: 30.06992276, E0: 0.00859048, E1: 0.00005105,
		I0: 1.77004347, I1: 0.00035372,
		W0: 131.78422574, W1: -0.01299630,
		P0: 44.96476227, P1: -0.32241464,
	},
	"pluto": {
		L0: 238.92903833, L1: 145.20780515,
		A: 39.48211675, E0: 0.24882730, E1: 0.00005170,
		I0: 17.14001206, I1: 0.00004818,
		W0: 110.30393684, W1: -0.01183482,
		P0: 224.06891629, P1: -0.04062942,
	},
}
